package cm4

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type write struct {
	command byte
	value   byte
}

type fakeClient struct {
	writes []write
	err    error
}

func (c *fakeClient) WriteByteData(command, value byte) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, write{command: command, value: value})
	return nil
}

func (c *fakeClient) Close() error {
	return nil
}

var testSpeeds = [5]int{0, 25, 50, 75, 100}

func TestSetWritesDuty(t *testing.T) {
	client := &fakeClient{}
	f := New(client, 0x30, testSpeeds)

	assert.NoError(t, f.Set(4))
	assert.Equal(t, []write{{command: 0x30, value: 255}}, client.writes)
}

func TestSetIsIdempotent(t *testing.T) {
	client := &fakeClient{}
	f := New(client, 0x30, testSpeeds)

	assert.NoError(t, f.Set(2))
	assert.NoError(t, f.Set(2))
	assert.NoError(t, f.Set(2))
	assert.Len(t, client.writes, 1)

	assert.NoError(t, f.Set(3))
	assert.Len(t, client.writes, 2)
	assert.Equal(t, write{command: 0x30, value: 191}, client.writes[1])
}

func TestSetRejectsBandOutOfRange(t *testing.T) {
	client := &fakeClient{}
	f := New(client, 0x30, testSpeeds)

	assert.Error(t, f.Set(-1))
	assert.Error(t, f.Set(5))
	assert.Empty(t, client.writes)
}

func TestSetRetriesAfterBusError(t *testing.T) {
	client := &fakeClient{err: errors.New("remote i/o error")}
	f := New(client, 0x30, testSpeeds)

	assert.Error(t, f.Set(1))

	// the failed write must not be remembered as applied.
	client.err = nil
	assert.NoError(t, f.Set(1))
	assert.Len(t, client.writes, 1)
}
