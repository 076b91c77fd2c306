package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client := New(30 * time.Second)
	require.NotNil(t, client)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestValidateURL(t *testing.T) {
	client := New(10 * time.Second)

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"public https", "https://openrouter.ai/api/v1/chat/completions", false},
		{"public http", "http://example.com/", false},
		{"file scheme blocked", "file:///etc/passwd", true},
		{"gopher scheme blocked", "gopher://example.com/", true},
		{"localhost blocked", "http://localhost:8080/", true},
		{"localhost subdomain blocked", "http://api.localhost/", true},
		{"loopback IP blocked", "http://127.0.0.1/", true},
		{"private 10.x blocked", "http://10.0.0.5/", true},
		{"private 172.16.x blocked", "http://172.16.1.1/", true},
		{"private 192.168.x blocked", "http://192.168.1.1/", true},
		{"link-local blocked", "http://169.254.169.254/latest/meta-data/", true},
		{"credential injection blocked", "http://evil.com@localhost/", true},
		{"missing hostname", "http:///path", true},
		{"ipv6 loopback blocked", "http://[::1]/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateURLWithBlockingDisabled(t *testing.T) {
	disabled := false
	client := NewWithOptions(10*time.Second, Options{BlockPrivateIP: &disabled})

	_, err := client.ValidateURL("http://localhost:8080/")
	assert.NoError(t, err)

	// Scheme checks still apply
	_, err = client.ValidateURL("file:///etc/passwd")
	assert.Error(t, err)
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"8.8.8.8", false},
		{"1.1.1.1", false},
		{"10.1.2.3", true},
		{"172.20.0.1", true},
		{"192.168.0.1", true},
		{"127.0.0.1", true},
		{"169.254.1.1", true},
		{"224.0.0.1", true},
		{"::1", true},
		{"fe80::1", true},
		{"fc00::1", true},
		{"fd12:3456::1", true},
		{"2001:db8::1", true},
		{"2606:4700:4700::1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.want, isPrivateIP(ip))
		})
	}
}

func TestDoBlocksPrivateTargets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(5 * time.Second)
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.Error(t, err, "httptest servers listen on loopback and must be blocked")
}

func TestWrapClientAllowsLocalhost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := WrapClient(srv.Client())
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
