package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole_TableTest(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "SUPER_ADMIN", want: RoleSuperAdmin},
		{in: "SELLER", want: RoleSeller},
		{in: "CUSTOMER", want: RoleCustomer},
		{in: "seller", wantErr: true},
		{in: "ADMIN", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestRole_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(RoleSeller)
	require.NoError(t, err)
	assert.JSONEq(t, `"SELLER"`, string(b))

	var r Role
	require.NoError(t, json.Unmarshal(b, &r))
	assert.Equal(t, RoleSeller, r)
}

func TestRole_UnmarshalRejectsUnknown(t *testing.T) {
	var r Role
	err := json.Unmarshal([]byte(`"ROOT"`), &r)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRole_ZeroMarshalsAsNull(t *testing.T) {
	b, err := json.Marshal(Role{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestParseStatus(t *testing.T) {
	for _, st := range AllStatuses {
		got, err := ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStatus("BANNED")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestRole_ValueAndScan(t *testing.T) {
	v, err := RoleSeller.Value()
	require.NoError(t, err)
	assert.Equal(t, "SELLER", v)

	var r Role
	require.NoError(t, r.Scan([]byte("SUPER_ADMIN")))
	assert.Equal(t, RoleSuperAdmin, r)

	assert.ErrorIs(t, r.Scan("ROOT"), ErrUnknownRole)
	assert.Error(t, r.Scan(42))

	v, err = Role{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStatus_ValueAndScan(t *testing.T) {
	v, err := StatusSuspended.Value()
	require.NoError(t, err)
	assert.Equal(t, "SUSPENDED", v)

	var s Status
	require.NoError(t, s.Scan("DEACTIVATED"))
	assert.Equal(t, StatusDeactivated, s)
	assert.ErrorIs(t, s.Scan("BANNED"), ErrUnknownStatus)
}
