// SPDX-License-Identifier: MIT

// Package monoid defines the aggregation capability used by the dynamic
// connectivity structures of this module.
//
// What:
//
//   - Op[T, F] couples a commutative monoid over values T with a family of
//     lazy updates F that act on T as monoid homomorphisms.
//   - Stock operations: SumAdd (sum with range add), MinAdd, MaxAdd and
//     XorApply (xor with xor-assign applied to every element).
//
// Laws every Op must satisfy (the toptree and dynconn packages rely on them):
//
//   - Combine is associative and commutative; Identity is its neutral element.
//     Component aggregates fold vertices in an unspecified order.
//   - Apply(f, Combine(a, b)) == Combine(Apply(f, a), Apply(f, b)).
//   - Apply(f, Identity()) == Identity().
//   - Apply(Compose(f, g), x) == Apply(f, Apply(g, x)): f is the newer update.
//
// Values that need the element count to apply an update (a sum under "add
// c to every element") carry the count inside T, see SumCount.
package monoid
