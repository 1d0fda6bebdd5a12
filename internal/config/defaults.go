package config

import (
	"time"

	"github.com/MKhiriev/go-delivery-board/models"
)

// Default values applied by [StructuredConfig.applyDefaults].
const (
	DefaultDriver              = "sqlite"
	DefaultDSN                 = "gestao_entregas.db"
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultMaxUploadSize       = 32 << 20
	DefaultTokenIssuer         = "go-delivery-board"
	DefaultTokenDuration       = 8 * time.Hour
	DefaultIgnoredCollaborator = "Tecnologia e Inovação - Contas Contabilidade"
	DefaultCollaborator        = "Não informado"
	DefaultTask                = "Sem tarefa"
	DefaultTopTasks            = 10
	DefaultTokenFile           = ".delivery-board-token"
	DefaultLogLevel            = "info"
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Storage.DB.Driver, DefaultDriver)
	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.MaxUploadSize, DefaultMaxUploadSize)
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.Ingest.ReplaceScope, string(models.ReplaceBatchMonths))
	setDefault(&cfg.Ingest.IgnoredCollaborator, DefaultIgnoredCollaborator)
	setDefault(&cfg.Ingest.DefaultCollaborator, DefaultCollaborator)
	setDefault(&cfg.Ingest.DefaultTask, DefaultTask)
	setDefault(&cfg.Report.TopTasks, DefaultTopTasks)
	setDefault(&cfg.Adapter.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Adapter.TokenFile, DefaultTokenFile)

	// only the SQLite backend has a sensible default location
	if cfg.Storage.DB.Driver == DefaultDriver {
		setDefault(&cfg.Storage.DB.DSN, DefaultDSN)
	}
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// ColumnSet returns the default header names extended with the configured
// aliases.
func (i Ingest) ColumnSet() models.ColumnSet {
	columns := models.DefaultColumnSet()
	for logical, aliases := range i.ColumnAliases {
		columns[logical] = append(columns[logical], aliases...)
	}
	return columns
}
