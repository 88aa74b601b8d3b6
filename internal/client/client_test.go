package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-dashboard/internal/client"
	"hr-dashboard/internal/shared/listquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreds() client.Credentials {
	return client.Credentials{AccessToken: "token-123", UserID: 7}
}

func TestListEmployees_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "createdAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "desc", r.URL.Query().Get("sortOrder"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"message": "Employees fetched successfully",
			"data": {
				"data": [{"id": 11, "firstName": "Budi", "lastName": "Santoso", "address": "Jakarta"}],
				"total": 50,
				"page": 2,
				"limit": 10
			}
		}`))
	}))
	defer server.Close()

	c := client.New(server.URL)
	q := listquery.Normalize(listquery.Raw{Page: "2", Limit: "10"})

	result, err := c.ListEmployees(context.Background(), validCreds(), q)

	require.NoError(t, err)
	assert.Equal(t, int64(50), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.Limit)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Budi", result.Records[0].FirstName)
}

func TestListEmployees_NoToken_NoRequestIssued(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.ListEmployees(context.Background(), client.Credentials{}, listquery.Normalize(listquery.Raw{}))

	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, called)
}

func TestListEmployees_SuccessFalse_UsesEnvelopeMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "message": "Database connection lost"}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.ListEmployees(context.Background(), validCreds(), listquery.Normalize(listquery.Raw{}))

	require.Error(t, err)
	msg, ok := client.IsFetchFailed(err)
	require.True(t, ok)
	assert.Equal(t, "Database connection lost", msg)
}

func TestListEmployees_SuccessFalseBlankMessage_UsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": ""}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.ListEmployees(context.Background(), validCreds(), listquery.Normalize(listquery.Raw{}))

	require.Error(t, err)
	assert.Equal(t, "Failed to fetch employees", err.Error())
}

func TestListEmployees_MalformedBody_FetchFailedWithFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.ListEmployees(context.Background(), validCreds(), listquery.Normalize(listquery.Raw{}))

	require.Error(t, err)
	_, ok := client.IsFetchFailed(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to fetch employees", err.Error())
}

func TestListEmployees_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "Unauthorized"}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.ListEmployees(context.Background(), validCreds(), listquery.Normalize(listquery.Raw{}))

	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestListEmployees_StaleResponseDiscarded(t *testing.T) {
	slowArrived := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "slow" {
			close(slowArrived)
			<-release
		}
		w.Write([]byte(`{"success": true, "message": "ok", "data": {"data": [], "total": 0, "page": 1, "limit": 10}}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	slowErr := make(chan error, 1)
	go func() {
		_, err := c.ListEmployees(context.Background(), validCreds(),
			listquery.Normalize(listquery.Raw{Search: "slow"}))
		slowErr <- err
	}()

	// Request kedua baru diterbitkan setelah yang pertama sampai di
	// server, jadi yang pertama pasti lebih tua dan harus dilaporkan
	// stale begitu response-nya akhirnya tiba.
	<-slowArrived
	_, err := c.ListEmployees(context.Background(), validCreds(), listquery.Normalize(listquery.Raw{}))
	require.NoError(t, err)
	close(release)

	assert.ErrorIs(t, <-slowErr, client.ErrStaleResponse)
}

func TestGetEmployee_WrappedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/11", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": 11, "firstName": "Budi"}}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	emp, err := c.GetEmployee(context.Background(), validCreds(), 11)

	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, int64(11), emp.ID)
	assert.Equal(t, "Budi", emp.FirstName)
}

func TestGetEmployee_BareRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 12, "firstName": "Siti", "lastName": "Rahma"}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	emp, err := c.GetEmployee(context.Background(), validCreds(), 12)

	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "Siti", emp.FirstName)
}

func TestGetEmployee_FailuresCollapseToNil(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		noCreds bool
	}{
		{name: "not found status", status: http.StatusNotFound, body: `{"success": false, "message": "Employee not found"}`},
		{name: "wrapped success false", status: http.StatusOK, body: `{"success": false, "message": "boom"}`},
		{name: "wrapped nil data", status: http.StatusOK, body: `{"success": true, "data": null}`},
		{name: "malformed body", status: http.StatusOK, body: `not-json`},
		{name: "missing credentials", status: http.StatusOK, body: `{"id": 1}`, noCreds: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c := client.New(server.URL)
			creds := validCreds()
			if tc.noCreds {
				creds = client.Credentials{}
			}

			emp, err := c.GetEmployee(context.Background(), creds, 99)

			assert.NoError(t, err)
			assert.Nil(t, emp)
		})
	}
}

func TestCreateEmployee_ReturnsCreatedRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "message": "Employee created successfully", "data": {"id": 21, "firstName": "Dewi"}}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	emp, err := c.CreateEmployee(context.Background(), validCreds(), client.CreateEmployeePayload{
		FirstName: "Dewi", LastName: "Lestari", Address: "Bandung", UserID: 7, DepartmentID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), emp.ID)
}

func TestCreateEmployee_SuccessTrueNilData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "message": "ok", "data": null}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.CreateEmployee(context.Background(), validCreds(), client.CreateEmployeePayload{})

	require.Error(t, err)
	assert.Equal(t, "No employee data returned", err.Error())
}

func TestLogin_SendsAdminLoginType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, decodeJSONBody(r, &body))
		assert.Equal(t, "admin", body["loginType"])
		assert.Equal(t, "admin", body["username"])

		w.Write([]byte(`{
			"success": true,
			"message": "Login successful",
			"data": {
				"user": {"id": 1, "fullName": "Administrator", "username": "admin", "roleId": 1, "role": {"name": "admin"}},
				"accessToken": "at-1",
				"refreshToken": "rt-1"
			}
		}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	data, err := c.Login(context.Background(), "admin", "password")

	require.NoError(t, err)
	assert.Equal(t, "at-1", data.AccessToken)
	assert.Equal(t, int64(1), data.User.ID)
}

func decodeJSONBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestLogin_Failure_CarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "Invalid credentials. Try admin/password"}`))
	}))
	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials. Try admin/password", err.Error())
}
