package config

import "fmt"

// DefaultMaxFileSize is the upload limit applied when none is configured (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// StorageSettings configures where uploaded files are written and under which
// URL prefix they are served.
type StorageSettings struct {
	UploadDir    string `mapstructure:"upload_dir" validate:"required"`
	PublicPrefix string `mapstructure:"public_prefix" validate:"required,startswith=/"`
	MaxFileSize  int64  `mapstructure:"max_file_size" validate:"gt=0,lte=104857600"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}
	return nil
}
