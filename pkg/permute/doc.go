// Package permute constructs deterministic, keyed, reversible
// permutations over bounded integer domains.
//
// Given a domain size N and a seeded source of randomness, a
// permutation is a bijection pi: [0, N) -> [0, N) such that Encode and
// Decode are both O(1) in expectation and reproducible from the seed
// alone. The construction also covers the full unsigned 32-bit and
// 64-bit word domains (size == -1).
//
// Variants are selected automatically by size: tiny domains get a
// materialized lookup table, mid-sized domains get a cycle-walked
// mixer over the smallest enclosing power-of-two block, and the full
// word domain gets a dedicated two-round mixer with no cycle walking.
// None of this is cryptographically secure: an adversary with a
// handful of plaintext/ciphertext pairs can recover the keys.
package permute
