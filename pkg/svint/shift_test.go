package svint

import "testing"

func TestShiftsAndConcat(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"logical left shift", func(t *testing.T) {
			v := FromUint64(8, false, false, 0x01)
			amt := FromUint64(8, false, false, 4)
			got := v.Shl(amt)
			if want := FromUint64(8, false, false, 0x10); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		}},
		{"arithmetic right shift sign fill", func(t *testing.T) {
			v := FromUint64(8, true, false, 0x80) // -128
			amt := FromUint64(8, false, false, 4)
			got := v.Ashr(amt)
			if want := FromUint64(8, true, false, 0xF8); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		}},
		{"logical right shift zero fill", func(t *testing.T) {
			v := FromUint64(8, true, false, 0x80)
			amt := FromUint64(8, false, false, 4)
			got := v.Lshr(amt)
			if want := FromUint64(8, true, false, 0x08); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		}},
		{"concat order MSB first", func(t *testing.T) {
			hi := FromUint64(4, false, false, 0xA)
			lo := FromUint64(4, false, false, 0x5)
			got := Concat(hi, lo)
			if want := FromUint64(8, false, false, 0xA5); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		}},
		{"replicate", func(t *testing.T) {
			v := FromUint64(2, false, false, 0b10)
			got := Replicate(3, v)
			if want := FromUint64(6, false, false, 0b101010); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
