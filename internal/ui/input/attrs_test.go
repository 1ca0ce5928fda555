package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInputKind(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    InputKind
		wantErr error
	}{
		{name: "absent", value: "", want: KindText},
		{name: "text", value: "text", want: KindText},
		{name: "number", value: "Number", want: KindNumber},
		{name: "password", value: " password ", want: KindPassword},
		{name: "unknown", value: "phone", want: KindText, wantErr: ErrUnknownInputKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInputKind(tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInputKind_String(t *testing.T) {
	for _, k := range []InputKind{KindText, KindNumber, KindPassword} {
		parsed, err := ParseInputKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	require.Equal(t, "InputKind(42)", InputKind(42).String())
}

func TestNewFromAttrs(t *testing.T) {
	hint := "Search"
	disabled := false

	tests := []struct {
		name        string
		attrs       Attrs
		opts        []Option
		wantKind    InputKind
		wantHint    string
		wantEnabled bool
		wantErr     error
	}{
		{
			name:        "defaults",
			attrs:       Attrs{},
			wantKind:    KindText,
			wantHint:    "",
			wantEnabled: true,
		},
		{
			name:        "all_set",
			attrs:       Attrs{InputKind: "number", Hint: &hint, Enabled: &disabled},
			wantKind:    KindNumber,
			wantHint:    "Search",
			wantEnabled: false,
		},
		{
			name:        "options_override_attrs",
			attrs:       Attrs{Hint: &hint, Enabled: &disabled},
			opts:        []Option{WithEnabled(true), WithHint("Find")},
			wantKind:    KindText,
			wantHint:    "Find",
			wantEnabled: true,
		},
		{
			name:    "unknown_kind",
			attrs:   Attrs{InputKind: "date"},
			wantErr: ErrUnknownInputKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewFromAttrs(tt.attrs, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, c.Kind())
			require.Equal(t, tt.wantHint, c.Hint())
			require.Equal(t, tt.wantEnabled, c.Enabled())
			require.False(t, c.ButtonVisible())
		})
	}
}
