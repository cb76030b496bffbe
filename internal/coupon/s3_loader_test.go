package coupon

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader records the path it was asked for and returns a canned result.
type stubLoader struct {
	set   CouponSet
	err   error
	calls []string
}

func (s *stubLoader) Load(ctx context.Context, filePath string) (CouponSet, error) {
	s.calls = append(s.calls, filePath)
	return s.set, s.err
}

func setOf(codes ...string) CouponSet {
	set := NewMapCouponSet(len(codes)).(*mapCouponSet)
	for _, c := range codes {
		set.Add(c)
	}
	return set
}

func TestFallbackLoader_Load(t *testing.T) {
	tests := []struct {
		name          string
		remote        *stubLoader
		local         *stubLoader
		s3Enabled     bool
		wantCode      string
		wantErr       string
		wantRemoteKey []string
		wantLocalPath []string
	}{
		{
			name:          "remote succeeds",
			remote:        &stubLoader{set: setOf("REMOTE1")},
			local:         &stubLoader{err: errors.New("should not be called")},
			s3Enabled:     true,
			wantCode:      "REMOTE1",
			wantRemoteKey: []string{"coupons/extra.gz"},
		},
		{
			name:          "remote fails, local used",
			remote:        &stubLoader{err: errors.New("S3 connection failed")},
			local:         &stubLoader{set: setOf("LOCAL1")},
			s3Enabled:     true,
			wantCode:      "LOCAL1",
			wantRemoteKey: []string{"coupons/extra.gz"},
			wantLocalPath: []string{"extra.gz"},
		},
		{
			name:          "remote disabled",
			remote:        &stubLoader{set: setOf("REMOTE1")},
			local:         &stubLoader{set: setOf("LOCAL2")},
			s3Enabled:     false,
			wantCode:      "LOCAL2",
			wantLocalPath: []string{"extra.gz"},
		},
		{
			name:          "both fail",
			remote:        &stubLoader{err: errors.New("S3 error")},
			local:         &stubLoader{err: errors.New("file not found")},
			s3Enabled:     true,
			wantErr:       "file not found",
			wantRemoteKey: []string{"coupons/extra.gz"},
			wantLocalPath: []string{"extra.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFallbackLoader(tt.remote, tt.local, "coupons/", tt.s3Enabled, zerolog.Nop())

			set, err := loader.Load(context.Background(), "extra.gz")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, set)
			} else {
				require.NoError(t, err)
				assert.True(t, set.Contains(tt.wantCode))
			}
			assert.Equal(t, tt.wantRemoteKey, tt.remote.calls)
			assert.Equal(t, tt.wantLocalPath, tt.local.calls)
		})
	}
}

func TestFallbackLoader_NilRemote(t *testing.T) {
	local := &stubLoader{set: setOf("LOCAL3")}
	loader := NewFallbackLoader(nil, local, "coupons/", true, zerolog.Nop())

	set, err := loader.Load(context.Background(), "extra.gz")

	require.NoError(t, err)
	assert.True(t, set.Contains("local3"))
}
