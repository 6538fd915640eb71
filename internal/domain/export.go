package domain

// DatabaseExport bundles one database's documents inside an export.
type DatabaseExport struct {
	Transactions []Transaction `json:"transactions"`
	Settings     Settings      `json:"settings"`
}

// ExportDocument is the full-backup JSON shape. Config may be absent in
// documents produced by other tools; the per-database documents are
// still applied on import.
type ExportDocument struct {
	Config     *AppConfig                `json:"config,omitempty"`
	Databases  map[string]DatabaseExport `json:"databases"`
	ExportDate string                    `json:"exportDate"`
}

// ReceiptRepository stores data-URI encoded receipt images under opaque
// keys derived from the uploaded filename.
type ReceiptRepository interface {
	Save(filename, dataURI string) (string, error)
	Get(key string) (string, error)
	Remove(key string) error
}
