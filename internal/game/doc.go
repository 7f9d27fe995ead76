// Package game implements the core blackjack rules engine.
//
// The main type is Table, which owns the session state (shoe, balance,
// bet limits) and runs one Round at a time through its state machine:
// bet placement, per-hand player actions, dealer playout and settlement.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	t := game.NewTable(rng, game.WithBalance(1000), game.WithLimits(10, 500))
//	if err := t.StartRound(25); err != nil { ... }
//	t.Hit()
//	t.Stand()
//	if t.AllHandsFinished() {
//	    t.PlayDealer()
//	    results, err := t.SettleBets()
//	}
//
// # Deterministic Testing
//
// The Table draws cards through the Shoe interface, so tests can inject
// a stacked card source and the production shoe can be seeded through
// randutil for reproducible shuffle order.
//
// All operations are synchronous and assume a single logical caller;
// a rejected action is a no-op that leaves the table in a consistent,
// still-actionable state with a descriptive message.
package game
