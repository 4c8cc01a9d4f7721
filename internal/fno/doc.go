// Package fno is the client for the AEX fibre-network-operator API: the
// paginated service-change feed plus the service, customer, work-order
// and product lookup endpoints used to enrich change records.
package fno
