//go:build unit
// +build unit

package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFaultDetail struct {
	XMLName xml.Name `xml:"urn:test TestFault"`
	Message string   `xml:"message"`
}

func TestFault_RoundTripThroughEnvelope(t *testing.T) {
	data, err := marshalFault(ClientFault("Invalid parameter", &testFaultDetail{Message: "blank input"}))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<soap:Fault><faultcode>soap:Client</faultcode><faultstring>Invalid parameter</faultstring>")

	body, err := openBody(data)
	require.NoError(t, err)
	require.True(t, body.isFault())

	var fault Fault
	require.NoError(t, body.decode(&fault))
	assert.True(t, fault.IsClient())
	assert.False(t, fault.IsServer())
	assert.Equal(t, "Invalid parameter", fault.String)

	var detail testFaultDetail
	require.NoError(t, fault.DecodeDetail(&detail))
	assert.Equal(t, "blank input", detail.Message)
}

func TestFault_DecodeDetailWithoutDetail(t *testing.T) {
	fault := ServerFault("boom", nil)
	var detail testFaultDetail
	assert.Error(t, fault.DecodeDetail(&detail))
}

func TestFault_CodeIgnoresPrefix(t *testing.T) {
	assert.True(t, (&Fault{Code: "S:Server"}).IsServer())
	assert.True(t, (&Fault{Code: "Client"}).IsClient())
}

func TestToFault(t *testing.T) {
	original := ClientFault("bad", nil)
	assert.Same(t, original, toFault(fmt.Errorf("wrapped: %w", original)))

	converted := toFault(errors.New("database is down"))
	assert.Equal(t, FaultCodeServer, converted.Code)
	assert.Equal(t, "database is down", converted.String)
	assert.Equal(t, "soap fault soap:Server: database is down", converted.Error())
}
