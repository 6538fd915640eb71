// Package kvstore implements the document repositories over the local
// key-value store. Every document is one JSON string under a fixed key.
package kvstore

const (
	configKey = "accounting_config"

	transactionsKeyPrefix = "accounting_transactions_"
	settingsKeyPrefix     = "accounting_settings_"

	receiptKeyPrefix = "receipt_"

	// pre-registry single-database layout, migrated once on session start
	legacyTransactionsKey = "accounting_transactions"
	legacySettingsKey     = "accounting_settings"
)

func transactionsKey(databaseID string) string {
	return transactionsKeyPrefix + databaseID
}

func settingsKey(databaseID string) string {
	return settingsKeyPrefix + databaseID
}
