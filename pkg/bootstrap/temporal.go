package bootstrap

import (
	"crypto/tls"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.temporal.io/sdk/client"
	temporallog "go.temporal.io/sdk/log"
)

// TemporalClientOptions builds dial options for a Temporal frontend. A non
// empty apiKey switches the connection to TLS with static API-key
// credentials, as required by hosted namespaces.
func TemporalClientOptions(logger *log.Logger, address, namespace, apiKey string) client.Options {
	options := client.Options{
		HostPort:  address,
		Namespace: namespace,
		Logger:    temporallog.NewStructuredLogger(slog.New(logger)),
	}
	if apiKey != "" {
		options.ConnectionOptions = client.ConnectionOptions{TLS: &tls.Config{}}
		options.Credentials = client.NewAPIKeyStaticCredentials(apiKey)
	}
	return options
}

func CreateTemporalClient(logger *log.Logger, address, namespace, apiKey string) (client.Client, error) {
	temporalClient, err := client.Dial(TemporalClientOptions(logger, address, namespace, apiKey))
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to connect to temporal at %s", address)
	}
	logger.Info("Temporal client created", "address", address, "namespace", namespace)
	return temporalClient, nil
}
