// Package extract implements stage one of the pipeline: it derives the
// change window, pulls the paginated change feed to exhaustion,
// enriches each admitted record with related service, customer,
// work-order and product data, and writes the composite set to the
// snapshot artifact consumed by the reconciliation stage.
package extract
