package config

// ValidateForRun checks the pre-flight requirements for serving: the resync
// job needs a store to read snapshots from.
func ValidateForRun(cfg *Config) error {
	if cfg.HostBackend == HostBackendRedis {
		if err := cfg.Redis.Validate(); err != nil {
			return err
		}
	}
	if cfg.ResyncCron != "" && cfg.StudentStoreURL == "" {
		return ErrStoreURLMissing
	}
	return nil
}
