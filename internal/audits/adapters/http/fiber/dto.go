package fiber

type AuditResponse struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Actor       string `json:"actor"`
	ActorEmail  string `json:"actorEmail"`
	Action      string `json:"action"`
	EventType   string `json:"eventType"`
	ObjectType  string `json:"objectType"`
	ObjectID    string `json:"objectId"`
	Description string `json:"description"`
}

// AuditListResponse is one page of the audit table.
// @Description Paginated audit listing
type AuditListResponse struct {
	Audits  []AuditResponse `json:"audits"`
	Limit   int             `json:"limit" example:"20"`
	Offset  int             `json:"offset" example:"0"`
	HasNext bool            `json:"hasNext"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"missing required parameters: tenant and table"`
}
