// Package ports defines the interfaces between the application core and
// its adapters: repositories, the unit of work, the OTP code store, and
// the outbound notifier.
package ports
