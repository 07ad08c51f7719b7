// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/prepay-planner/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateStorageBackend checks if the storage backend is one of the supported backends.
func ValidateStorageBackend(backend string) error {
	if backend != constants.StorageBackendMemory && backend != constants.StorageBackendRedis {
		return fmt.Errorf("expected storage backend of %s or %s, got %s",
			constants.StorageBackendMemory, constants.StorageBackendRedis, backend)
	}
	return nil
}
