package dto_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/domain/donation"
	"github.com/jsamuelsen11/donation-service/internal/domain/organization"
)

func TestToOrganizationListResponse(t *testing.T) {
	t.Parallel()

	orgs := []organization.Organization{
		{ID: "clean-water-fund", Name: "Clean Water Fund", Category: organization.CategoryEnvironment, Location: "Nairobi, Kenya"},
		{ID: "code-forward", Name: "Code Forward", Category: organization.CategoryEducation},
	}

	got := dto.ToOrganizationListResponse(orgs)

	require.Equal(t, 2, got.Count)
	assert.Equal(t, dto.OrganizationResponse{
		ID:       "clean-water-fund",
		Name:     "Clean Water Fund",
		Category: "environment",
		Location: "Nairobi, Kenya",
	}, got.Organizations[0])
	assert.Equal(t, "education", got.Organizations[1].Category)
}

func TestToOrganizationListResponse_EmptyEncodesArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToOrganizationListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"organizations":[],"count":0}`, string(data))
}

func TestToDonationResponse(t *testing.T) {
	t.Parallel()

	outcome := donation.Succeeded(donation.Response{Success: true, DonationID: "d1", Message: "Thank you"})

	data, err := json.Marshal(dto.ToDonationResponse(outcome))
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":"success","donation_id":"d1","message":"Thank you"}`, string(data))
}

func TestToCheckResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		email  string
		want   string
	}{
		{"eligible", "25.5", "x@y.com", `{"can_submit":true,"amount":25.50}`},
		{"bad email keeps amount", "10", "bad", `{"can_submit":false,"amount":10.00,"errors":{"email":"must be a valid email address"}}`},
		{"bad amount", "0", "x@y.com", `{"can_submit":false,"errors":{"amount":"` + donation.ErrAmountNotPositive.Error() + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(dto.ToCheckResponse(donation.Check(tt.amount, tt.email)))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestToPresetsResponse(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToPresetsResponse(donation.Presets()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"USD","presets":[5,10,25,50,100]}`, string(data))
}

func TestErrorResponse_StatusCodeOmittedWhenZero(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ErrorResponse{Type: "about:blank", Title: "Bad Gateway", Status: http.StatusBadGateway})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "status_code")
}
