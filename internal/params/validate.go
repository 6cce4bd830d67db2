package params

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	xerrors "hedera-agent-go/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a raw parameter record and maps
// failures onto the invalid-parameters error code.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return xerrors.Wrap(xerrors.CodeInvalidParameters, err, "invalid parameters")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" failed "+fe.Tag())
	}
	return xerrors.Newf(xerrors.CodeInvalidParameters, "invalid parameters: %s", strings.Join(fields, "; "))
}

// Schema reflects the JSON schema of a raw parameter record for tool
// registration. Definitions are inlined so the schema is self-contained.
func Schema(v any) map[string]any {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	s := r.Reflect(v)
	s.Version = ""
	raw, err := s.MarshalJSON()
	if err != nil {
		return map[string]any{"type": "object"}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"type": "object"}
	}
	return out
}
