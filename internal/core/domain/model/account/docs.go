// Package account provides domain entities for user identity and rider
// profiles.
//
// A User is either a customer or a rider; the role is a mutually exclusive
// tag, not a subtype. Riders carry an additional 1:1 RiderProfile that holds
// their service type and the availability flags.
//
// Key business rules:
//   - A user's rating is a running average in [1,5] derived from the count of
//     received ratings, and is neutral (zero) while no ratings exist
//   - A rider cannot be available while offline, and cannot be available
//     before being verified; going offline or losing verification clears
//     availability so the invariant can never be broken by a flag update
package account
