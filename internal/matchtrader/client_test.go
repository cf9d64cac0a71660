package matchtrader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestGetChallenges(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/challenges", r.URL.Path)
		json.NewEncoder(w).Encode([]Challenge{
			{ChallengeID: "abc", Fee: 50, Phases: []Phase{{InitialBalance: 10000}}},
			{ChallengeID: "def", Fee: 100, IsHidden: true, Phases: []Phase{{InitialBalance: 25000}}},
		})
	})

	challenges, err := client.GetChallenges(context.Background())
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, "abc", challenges[0].ChallengeID)
	assert.Equal(t, float64(10000), challenges[0].Phases[0].InitialBalance)
	assert.True(t, challenges[1].IsHidden)
}

func TestGetAccountByEmailNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no account"})
	})

	_, err := client.GetAccountByEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetAccountByEmailPassesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "trader@example.com", r.URL.Query().Get("email"))
		json.NewEncoder(w).Encode(Account{Email: "trader@example.com", AccountID: "42", Status: "active"})
	})

	account, err := client.GetAccountByEmail(context.Background(), "trader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "42", account.AccountID)
}

func TestCreateDemoAccountDeclined(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var input CreateDemoAccountInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Jane", input.FirstName)
		json.NewEncoder(w).Encode(CreateDemoAccountResult{Success: false, Message: NoDemoAccountsMessage})
	})

	result, err := client.CreateDemoAccount(context.Background(), CreateDemoAccountInput{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, NoDemoAccountsMessage)
}

func TestBackendErrorSurfacesMessageVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "upstream exploded"})
	})

	_, err := client.GetChallenges(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestIsNoDemoAccounts(t *testing.T) {
	err := &APIError{StatusCode: 409, Message: "No demo accounts available at this time", Endpoint: "/demo-accounts"}
	assert.True(t, IsNoDemoAccounts(err))
	assert.False(t, IsNoDemoAccounts(&APIError{StatusCode: 500, Message: "boom"}))
	assert.False(t, IsNoDemoAccounts(nil))
}

func TestCheckAdmin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/check", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"isAdmin": true})
	})

	ok, err := client.CheckAdmin(context.Background(), "ops@fundezy.io")
	require.NoError(t, err)
	assert.True(t, ok)
}
