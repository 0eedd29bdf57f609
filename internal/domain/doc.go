// Package domain contains the core entities of the team builder: the
// request for a team and the structured team the language model returns.
// The types carry both their JSON contract and their validation rules and
// are independent of any provider or delivery mechanism.
package domain
