package domain

// Audit is one row of the backend audit log. Timestamp is kept as the
// backend renders it.
type Audit struct {
	ID          string
	Timestamp   string
	Actor       string
	ActorEmail  string
	Action      string
	EventType   string
	ObjectType  string
	ObjectID    string
	Description string
}

// AuditPage is one page of the audit table.
type AuditPage struct {
	Audits []Audit
	Limit  int
	Offset int
}

// HasNext reports whether the page was full, so another page may follow.
func (p *AuditPage) HasNext() bool {
	return p.Limit > 0 && len(p.Audits) >= p.Limit
}
