package analyzer

import (
	"fmt"
	"time"
)

func NewResultProvider(providerType, baseURL string, timeout time.Duration) (ResultProvider, error) {
	switch providerType {
	case "http":
		return NewHTTPProvider(baseURL, timeout), nil
	case "local":
		return NewLocalProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported analyzer provider: %s", providerType)
	}
}
