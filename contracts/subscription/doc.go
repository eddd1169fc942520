/*
Package subscription implements Subscription contract, an escrow and
revenue-sharing registry for recurring payments.

Each subscription is bound to a 32-byte resource identifier and stores the
token it is paid in, up to five co-owners with integer percentage shares,
the price and duration of one paid period, the expiry timestamp and the
cumulative amount ever paid. Payments escrow the period price on a derived
keyless token account and extend the expiry; co-owners later withdraw their
share of everything accrued, never more than their entitlement rounded down.

Record identifiers are derived deterministically from the resource and the
contract's own script hash, so clients can compute them offline. The escrow
account is in turn derived from the record identifier. No key controls the
escrow; the token contract releases its funds only when this contract asks.

# Contract notifications

SubscriptionCreated notification. This notification is produced when a new
subscription record is registered.

	SubscriptionCreated:
	  - name: id
	    type: Hash256
	  - name: resource
	    type: Hash256
	  - name: creator
	    type: Hash160

Payment notification. This notification is produced when a period is paid
for and the expiry extended.

	Payment:
	  - name: id
	    type: Hash256
	  - name: payer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: paidUntil
	    type: Integer

Withdrawal notification. This notification is produced when a co-owner
collects part of their entitlement from escrow.

	Withdrawal:
	  - name: id
	    type: Hash256
	  - name: withdrawer
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package subscription

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'c' -> int
   number of registered subscription records
 - <derived id, 32 bytes> -> std.Serialize(Subscription)
   all subscription records (here Subscription is a structure defined in current package)

Identifier derivation skips digests starting with the counter prefix byte,
so record keys never collide with bookkeeping keys.
*/
