/*
Package arena implements a continuous funding market.

An arena contains topics and every topic contains competing choices.
Accounts lock funds behind a choice by contributing. Each contribution is
split between the arena, the topic, the holders of existing positions and
the choice funds destination. What is left becomes a new position of the
contributor.

Positions accrue shares once per elapsed cycle of the topic. A cycle is a
fixed number of blocks counted from the block at which the topic was
created. Accrual is lazy: the shares of a position and the aggregates of a
choice are brought up to date whenever they are read or modified, so no
block ticker is required.

Topics and choices are never removed from the state. Removal marks them as
deleted, which blocks new contributions while withdrawals, transfers and
queries keep working.
*/
package arena
