package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/legislators/service"
)

func TestToOldRolesResponseEncodesEmptyGroupsAsArrays(t *testing.T) {
	groups := []service.TermGroup{
		{Term: "20092010"},
		{Term: "20112012", Chambers: []service.ChamberGroup{
			{Chamber: "upper", Name: "Senate", Types: []service.TypeGroup{
				{Slug: "member"},
			}},
		}},
	}

	raw, err := json.Marshal(toOldRolesResponse("CAL000001", groups))
	require.NoError(t, err)

	var body struct {
		Terms []struct {
			Chambers []struct {
				Types []struct {
					Roles json.RawMessage `json:"roles"`
				} `json:"types"`
			} `json:"chambers"`
		} `json:"terms"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Terms, 2)

	assert.NotNil(t, body.Terms[0].Chambers, "empty term encodes chambers as []")
	assert.Empty(t, body.Terms[0].Chambers)
	assert.NotContains(t, string(raw), "null")
	assert.JSONEq(t, "[]", string(body.Terms[1].Chambers[0].Types[0].Roles))
}
