package params

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	xerrors "hedera-agent-go/internal/errors"
)

func TestValidateRequiredFields(t *testing.T) {
	err := Validate(TransferHbar{})
	if err == nil {
		t.Fatal("missing transfers should fail validation")
	}
	if !xerrors.IsCode(err, xerrors.CodeInvalidParameters) {
		t.Fatalf("code = %s", xerrors.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "Transfers") {
		t.Fatalf("message should name the field: %v", err)
	}

	err = Validate(TransferHbar{
		Transfers: []TransferEntry{{AccountID: "0.0.2", Amount: decimal.NewFromInt(1)}},
	})
	if err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestValidateDivesIntoEntries(t *testing.T) {
	err := Validate(TransferHbar{
		Transfers: []TransferEntry{{Amount: decimal.NewFromInt(1)}},
	})
	if err == nil {
		t.Fatal("entry without an account id should fail validation")
	}
}

func TestSchemaIsSelfContained(t *testing.T) {
	schema := Schema(TransferHbar{})
	if schema["type"] != "object" {
		t.Fatalf("schema type = %v", schema["type"])
	}
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema should carry properties")
	}
	if _, ok := properties["transfers"]; !ok {
		t.Fatal("schema should describe the transfers field")
	}
	if _, ok := schema["$defs"]; ok {
		t.Fatal("schema definitions should be inlined")
	}
}
