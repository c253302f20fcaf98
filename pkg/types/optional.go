package types

import "github.com/aarondl/null/v8"

// OptionalString is a nullable update field that also records whether
// the client sent it at all. An absent field leaves the column
// untouched; an explicit JSON null clears it. A plain *null.String
// cannot express the difference because encoding/json nils a settable
// pointer on a null literal before the wrapped UnmarshalJSON runs.
type OptionalString struct {
	Set   bool
	Value null.String
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(data)
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	return o.Value.MarshalJSON()
}
