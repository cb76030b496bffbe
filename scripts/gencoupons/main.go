package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Writes two gzipped coupon tables that can be listed in COUPON_FILES.
// Every code in them grants the same 90% reduction as GIRISHSIR90.
func main() {
	dataDir := "data/coupons"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	tables := map[string][]string{
		"partners.gz": {
			"APOLLO90",
			"WELLNESSPARTNER",
			"clinicfriend",
		},
		"seasonal.gz": {
			"MONSOON90",
			"Diwali90",
			"NEWYEAR90",
		},
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		filePath := filepath.Join(dataDir, name)
		if err := createCouponFile(filePath, tables[name]); err != nil {
			log.Fatalf("Failed to create %s: %v", name, err)
		}
		fmt.Printf("Created %s with %d codes\n", filePath, len(tables[name]))
	}

	fmt.Println("\nCodes are matched case-insensitively, e.g. 'diwali90' is accepted.")
	fmt.Println("Export COUPON_FILES=data/coupons/partners.gz,data/coupons/seasonal.gz to load them.")
}

func createCouponFile(filePath string, codes []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, code := range codes {
		if _, err := gzipWriter.Write([]byte(code + "\n")); err != nil {
			return fmt.Errorf("failed to write code: %w", err)
		}
	}

	return nil
}
