// Package contracts defines the versioned JSON messages the ordering service
// exchanges over the message bus.
//
// Every outbound domain event is wrapped in an Envelope carrying identity,
// type, version, and timestamp, with the event-specific payload as raw JSON.
// Inbound saga responses (payment, restaurant approval) use the same envelope
// with their own payload types. All events of one order share the order id as
// partition key so consumers observe them in order.
package contracts
