package coupon

import (
	"context"
	"fmt"
	"sync"

	"mwell-store/internal/model"

	"github.com/rs/zerolog"
)

// validator implements Validator over the built-in codes plus any loaded
// coupon tables. The sets are read-only after construction.
type validator struct {
	builtin    CouponSet
	couponSets []CouponSet
	logger     zerolog.Logger
}

// ValidatorConfig holds configuration for the coupon validator.
type ValidatorConfig struct {
	// BuiltinCodes are always recognised, without any file.
	BuiltinCodes []string

	// FilePaths lists extra gzipped coupon tables. A code present in any
	// table is valid.
	FilePaths []string
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		BuiltinCodes: []string{BuiltinCode},
	}
}

// NewValidator creates a new coupon validator.
// It loads all coupon files concurrently at initialisation time.
func NewValidator(ctx context.Context, config *ValidatorConfig, loader Loader, logger zerolog.Logger) (Validator, error) {
	if config == nil {
		config = DefaultValidatorConfig()
	}

	logger = logger.With().Str("component", "coupon-validator").Logger()

	builtin := NewMapCouponSet(len(config.BuiltinCodes)).(*mapCouponSet)
	for _, code := range config.BuiltinCodes {
		builtin.Add(code)
	}

	v := &validator{
		builtin:    builtin,
		couponSets: make([]CouponSet, 0, len(config.FilePaths)),
		logger:     logger,
	}

	if len(config.FilePaths) == 0 {
		logger.Info().Int("builtin_codes", builtin.Size()).Msg("coupon validator ready with built-in codes only")
		return v, nil
	}
	if loader == nil {
		return nil, fmt.Errorf("coupon files configured but no loader supplied")
	}

	type loadResult struct {
		index int
		set   CouponSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, set: set, err: err}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	total := builtin.Size()
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load coupon file")
			return nil, fmt.Errorf("failed to load coupon file %s: %w", config.FilePaths[i], result.err)
		}
		v.couponSets = append(v.couponSets, result.set)
		total += result.set.Size()
	}

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Int("total_coupons", total).
		Msg("coupon validator initialised")

	return v, nil
}

// Validate normalises the code and looks it up in the built-in codes first,
// then in each loaded table.
func (v *validator) Validate(ctx context.Context, code string) (Coupon, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return Coupon{}, model.ErrInvalidCoupon
	}

	if v.builtin.Contains(normalized) {
		return Coupon{Code: normalized, DiscountPercent: DiscountPercent}, nil
	}

	for _, set := range v.couponSets {
		if err := ctx.Err(); err != nil {
			return Coupon{}, err
		}
		if set.Contains(normalized) {
			return Coupon{Code: normalized, DiscountPercent: DiscountPercent}, nil
		}
	}

	v.logger.Debug().Str("coupon_code", normalized).Msg("coupon code not recognised")
	return Coupon{}, model.ErrInvalidCoupon
}

// Close releases resources held by the validator.
func (v *validator) Close() error {
	v.couponSets = nil
	v.logger.Info().Msg("coupon validator closed")
	return nil
}
