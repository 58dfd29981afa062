package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultRecordsTable = "vault_records"

// recordColumns is the column order every SELECT uses and scanRecord expects.
var recordColumns = []string{
	"id", "owner_id", "title", "iv", "encrypted_data", "created_at", "updated_at",
}

func ownedBy(id, ownerID string) sq.And {
	return sq.And{sq.Eq{"id": id}, sq.Eq{"owner_id": ownerID}}
}

func buildListRecordsQuery(ph sq.PlaceholderFormat, ownerID string) (string, []any, error) {
	return sq.Select(recordColumns...).
		From(vaultRecordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		PlaceholderFormat(ph).
		ToSql()
}

func buildGetRecordQuery(ph sq.PlaceholderFormat, id, ownerID string) (string, []any, error) {
	return sq.Select(recordColumns...).
		From(vaultRecordsTable).
		Where(ownedBy(id, ownerID)).
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertRecordQuery(ph sq.PlaceholderFormat, r models.VaultRecord) (string, []any, error) {
	return sq.Insert(vaultRecordsTable).
		Columns(recordColumns...).
		Values(r.ID, r.OwnerID, r.Title, r.IV, r.EncryptedData, r.CreatedAt, r.UpdatedAt).
		PlaceholderFormat(ph).
		ToSql()
}

func buildUpdateRecordQuery(ph sq.PlaceholderFormat, id, ownerID string, in models.RecordInput, now time.Time) (string, []any, error) {
	return sq.Update(vaultRecordsTable).
		Set("title", in.Title).
		Set("iv", in.IV).
		Set("encrypted_data", in.EncryptedData).
		Set("updated_at", now).
		Where(ownedBy(id, ownerID)).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteRecordQuery(ph sq.PlaceholderFormat, id, ownerID string) (string, []any, error) {
	return sq.Delete(vaultRecordsTable).
		Where(ownedBy(id, ownerID)).
		PlaceholderFormat(ph).
		ToSql()
}
