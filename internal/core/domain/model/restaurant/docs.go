// Package restaurant contains the restaurant catalog model used as input when
// initiating orders.
//
// The Restaurant aggregate carries the products a customer can order and an
// active flag. It is a read model from the ordering context's point of view:
// the catalog is owned elsewhere, and here it only answers two questions
// during order initiation. Is the restaurant currently accepting orders, and
// what is the confirmed unit price of each ordered product.
package restaurant
