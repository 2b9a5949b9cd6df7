/*
Package allowance extends cash balances with spending allowances.

An account owner approves a spender for an amount of a currency. The spender
can then move up to that amount out of the owner account. Each transfer
decreases the allowance.

The Controller in this package is the capital ledger used by the arena
extension: funds are held by x/cash and moved on behalf of the owner after
the allowance was consumed.
*/
package allowance
