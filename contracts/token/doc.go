/*
Package token implements the SUBS token contract backing subscription escrows.

Token contract stores balances of all subscription participants. It is a
NEP-17 compatible contract, so it can be tracked and controlled by N3
compatible network monitors and wallet software.

Subscription payments and owner withdrawals are small recurring transfers, so
the token has higher (12) decimal precision than native GAS contract. Escrow
accounts derived by the subscription contract hold collected payments; they
are moved exclusively through TransferX invoked by the subscription contract
registered at deploy time.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Lock notification. This notification is produced when a lock account is
created. It contains the details of the transaction that produced the lock,
the address of the lock account and the epoch number until which the lock
account is valid.

	Lock:
	  - name: txID
	    type: ByteArray
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: until
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'TotalSupply' -> int
   total amount of SUBS tokens in circulation in Fixed12
 - 'e' -> interop.Hash160
   script hash of the subscription contract allowed to invoke TransferX
 - a<interop.Hash160> -> std.Serialize(Account)
   balance sheet of all accounts (here Account is a structure defined in current package)

# Accounting
Contract stores information about all token accounts, including derived
escrow accounts of subscriptions.
*/
