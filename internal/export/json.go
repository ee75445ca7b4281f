package export

import (
	"encoding/json"

	"github.com/nao1215/a11yaudit/internal/model"
)

// encodeJSON renders the audits as indented JSON. The output is the audit
// slice itself, so unmarshalling the export reproduces the input exactly,
// including empty issue lists.
func encodeJSON(audits []model.PageAudit) ([]byte, error) {
	if audits == nil {
		audits = []model.PageAudit{}
	}
	return json.MarshalIndent(audits, "", "  ")
}
