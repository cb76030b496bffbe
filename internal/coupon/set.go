package coupon

// mapCouponSet implements CouponSet using a map keyed by normalized code.
type mapCouponSet struct {
	coupons map[string]struct{}
}

// NewMapCouponSet creates a new map-based coupon set.
func NewMapCouponSet(capacity int) CouponSet {
	return &mapCouponSet{
		coupons: make(map[string]struct{}, capacity),
	}
}

// Contains checks if a coupon code exists in the set, ignoring case.
func (s *mapCouponSet) Contains(code string) bool {
	_, exists := s.coupons[Normalize(code)]
	return exists
}

// Size returns the number of coupons in the set.
func (s *mapCouponSet) Size() int {
	return len(s.coupons)
}

// Add adds a coupon code to the set.
func (s *mapCouponSet) Add(code string) {
	if n := Normalize(code); n != "" {
		s.coupons[n] = struct{}{}
	}
}
