package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	tableDeliveries = "entregas"
	tableProfiles   = "perfis"

	colID           = "id"
	colCollaborator = "colaborador"
	colTask         = "tarefa"
	colStatus       = "status"
	colDepartment   = "departamento"
	colMonth        = "mes_referencia"
	colDeliveryDate = "data_entrega"
	colUploadedAt   = "data_upload"

	colProfile      = "perfil"
	colPasswordHash = "senha_hash"
)

// insertColumns is the column order of the prepared delivery insert.
var insertColumns = []string{
	colCollaborator,
	colTask,
	colStatus,
	colDepartment,
	colMonth,
	colDeliveryDate,
	colUploadedAt,
}

var selectColumns = append([]string{colID}, insertColumns...)

func (db *DB) buildInsertDeliveryQuery() (string, error) {
	query, _, err := db.builder.
		Insert(tableDeliveries).
		Columns(insertColumns...).
		Values(make([]any, len(insertColumns))...).
		ToSql()
	return query, err
}

func (db *DB) buildQueryByMonths(months []string) (string, []any, error) {
	query := db.builder.
		Select(selectColumns...).
		From(tableDeliveries).
		OrderBy(colID)

	if len(months) > 0 {
		query = query.Where(sq.Eq{colMonth: months})
	}

	return query.ToSql()
}

func (db *DB) buildDeleteByMonthQuery(month string) (string, []any, error) {
	return db.builder.
		Delete(tableDeliveries).
		Where(sq.Eq{colMonth: month}).
		ToSql()
}

func (db *DB) buildDeleteAllQuery() (string, []any, error) {
	return db.builder.Delete(tableDeliveries).ToSql()
}

func (db *DB) buildDistinctMonthsQuery() (string, []any, error) {
	return db.builder.
		Select(colMonth).
		Distinct().
		From(tableDeliveries).
		OrderBy(colMonth + " DESC").
		ToSql()
}

func (db *DB) buildDistinctCollaboratorsQuery(ignored string) (string, []any, error) {
	return db.builder.
		Select(colCollaborator).
		Distinct().
		From(tableDeliveries).
		Where(sq.NotEq{colCollaborator: ignored}).
		OrderBy(colCollaborator).
		ToSql()
}

func (db *DB) buildGetPasswordHashQuery(profile string) (string, []any, error) {
	return db.builder.
		Select(colPasswordHash).
		From(tableProfiles).
		Where(sq.Eq{colProfile: profile}).
		ToSql()
}

func (db *DB) buildUpsertPasswordHashQuery(profile, hash string) (string, []any, error) {
	return db.builder.
		Insert(tableProfiles).
		Columns(colProfile, colPasswordHash).
		Values(profile, hash).
		Suffix("ON CONFLICT (" + colProfile + ") DO UPDATE SET " + colPasswordHash + " = excluded." + colPasswordHash).
		ToSql()
}
