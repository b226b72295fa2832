// Package opensearch connects to an OpenSearch cluster.
//
// New builds a client from Config and runs Healthcheck once so a misconfigured
// cluster fails at startup. Healthcheck can also be registered as a readiness
// probe. EnsureIndex creates an index with its mapping on first start.
//
// Functions accept opensearchapi.Transport rather than *opensearch.Client so
// tests can substitute a fake transport.
package opensearch
