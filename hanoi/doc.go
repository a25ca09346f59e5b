// Package hanoi implements the Tower of Hanoi as a two-phase step-queue engine.
//
// Compile simulates the recursive solve structurally and returns the full
// instruction queue (push frame, base-case marker, move disk, pop frame);
// no timing or side effects are involved. A Player then replays that queue
// against a Towers model, either continuously through a run.Task or one
// instruction per Step call. Pausing only stops the task from taking the next
// instruction and resuming restarts it at the cursor, so nothing is ever
// rewound or replayed twice.
//
// Sinks attached to a Player are called with the player's lock held and must
// not call back into it.
package hanoi
