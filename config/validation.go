package config

import "fmt"

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateSchedulerConfig(&config.Scheduler); err != nil {
		return fmt.Errorf("scheduler config validation failed: %w", err)
	}

	if err := validateFetcherConfig(&config.Fetcher); err != nil {
		return fmt.Errorf("fetcher config validation failed: %w", err)
	}

	if err := validateOutboxConfig(&config.Outbox); err != nil {
		return fmt.Errorf("outbox config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateSchedulerConfig(config *SchedulerConfig) error {
	if config.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %v", config.SweepInterval)
	}

	if config.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", config.BatchSize)
	}

	if config.WorkerLimit < 1 {
		return fmt.Errorf("worker limit must be positive, got %d", config.WorkerLimit)
	}

	return nil
}

func validateFetcherConfig(config *FetcherConfig) error {
	if config.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.Timeout)
	}

	if config.FirstFetchLimit < 1 {
		return fmt.Errorf("first fetch limit must be positive, got %d", config.FirstFetchLimit)
	}

	if config.RefreshFetchLimit < 1 {
		return fmt.Errorf("refresh fetch limit must be positive, got %d", config.RefreshFetchLimit)
	}

	return nil
}

func validateOutboxConfig(config *OutboxConfig) error {
	if config.WorkerInterval <= 0 {
		return fmt.Errorf("worker interval must be positive, got %v", config.WorkerInterval)
	}

	if config.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", config.BatchSize)
	}

	return nil
}
