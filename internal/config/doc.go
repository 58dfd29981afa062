// Package config loads the settings of the vault server and client.
//
// Sources are merged with mergo, later ones overriding non-zero fields of
// earlier ones:
//  1. Environment variables (APP_, STORAGE_, SERVER_, ADAPTER_, CLIENT_)
//  2. Command-line flags
//  3. JSON file from -c or CONFIG
//
// [GetStructuredConfig] is used by the server and by the issue-token command,
// [GetClientConfig] by the terminal client. Both validate the merged result;
// the client additionally requires an identity and a persistent record store.
package config
