// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

var ErrUserQuit = errors.New("вышел из программы")

// humanizeError turns session and transport errors into a short message for
// the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrUnlockFailed):
		return "Неверный мастер-пароль или данные повреждены"
	case errors.Is(err, vault.ErrLocked):
		return "Хранилище заблокировано"
	case errors.Is(err, vault.ErrNotFoundOrForbidden):
		return "Запись не найдена или нет доступа"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сервер отклонил токен доступа"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Слишком много запросов, повторите позже"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
