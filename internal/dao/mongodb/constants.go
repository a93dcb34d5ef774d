package mongodb

const (
	CollectionBills     = "bills"
	CollectionCompanies = "companies"
	CollectionOutbox    = "outbox"
	CollectionAuditLogs = "audit_logs"
)
