package gotld

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateOrigin_Hostname(t *testing.T) {
	f := newTestManager(t)
	allowed := []string{"example.com", "example.co.uk"}

	// any subdomain of an allowed registrable domain passes
	require.True(t, f.ValidateOrigin("https://www.example.com", allowed))
	require.True(t, f.ValidateOrigin("deep.sub.example.com", allowed))
	require.True(t, f.ValidateOrigin("http://app.example.co.uk:3000/cb", allowed))

	require.False(t, f.ValidateOrigin("https://www.evil.com", allowed))
	// a shared suffix is not a shared registrable domain
	require.False(t, f.ValidateOrigin("notexample.com", allowed))
	require.False(t, f.ValidateOrigin("example.com.evil.org", allowed))

	require.False(t, f.ValidateOrigin("https://www.example.com", nil))
	require.False(t, f.ValidateOrigin("", allowed))
	require.False(t, f.ValidateOrigin("com", allowed))
}

func TestValidateOrigin_IP(t *testing.T) {
	f := newTestManager(t)
	allowed := []string{"example.com", "10.0.0.0/8", "192.168.1.5", "2001:db8::/32"}

	require.True(t, f.ValidateOrigin("10.1.2.3", allowed))
	require.True(t, f.ValidateOrigin("http://10.255.0.1:8080/x", allowed))
	require.True(t, f.ValidateOrigin("192.168.1.5", allowed))
	require.True(t, f.ValidateOrigin("https://[2001:db8::42]/cb", allowed))

	require.False(t, f.ValidateOrigin("192.168.1.6", allowed))
	require.False(t, f.ValidateOrigin("11.0.0.1", allowed))
	require.False(t, f.ValidateOrigin("2001:db9::1", allowed))
}

func TestValidateOrigin_Uninitialized(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	// hostname origins need the ruleset, IP origins do not
	require.False(t, f.ValidateOrigin("www.example.com", []string{"example.com"}))
	require.True(t, f.ValidateOrigin("10.0.0.1", []string{"10.0.0.0/8"}))
}
