package qubxml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChildElementSchemaAtMostOne(t *testing.T) {
	require.True(t, NewChildElementSchema("item", 0, 1).AtMostOne())
	require.False(t, NewChildElementSchema("item", 0, 0).AtMostOne(), "MaxCount 0 means unbounded")
	require.False(t, NewChildElementSchema("item", 1, 5).AtMostOne())
}

func TestElementSchemaRequiredAttributes(t *testing.T) {
	schema := NewElementSchema("root", []AttributeSchema{
		NewAttributeSchema("id", true),
		NewAttributeSchema("class", false),
		NewAttributeSchema("version", true),
	}, nil)
	req := schema.RequiredAttributes()
	require.Len(t, req, 2)
	require.Equal(t, "id", req[0].Name)
	require.Equal(t, "version", req[1].Name)
}

func TestElementSchemaRequiredAttributesEmpty(t *testing.T) {
	schema := NewElementSchema("leaf", nil, nil)
	require.Empty(t, schema.RequiredAttributes())
}
