/* Package church: booleans, pairs and natural numbers made of nothing but closures

A Church encoding represents data by behavior: a value is a function, and the
only way to learn anything about it is to apply it to some continuations and
see which one comes back.  There are no native bools or ints underneath; the
host language only supplies function application.

Section 1: Truth

A boolean is a selector of two arguments.  TRUE returns the first, FALSE
returns the second.  IF is nothing more than applying the selector to both
branches, so IF(s, x, y) is just s(x, y).  NOT, OR, AND and XOR all fall out
of choosing which booleans to hand the selector.

Go evaluates arguments eagerly, so a selector choosing between two already
computed branches has already paid for both.  That is mostly harmless, except
where one branch would take the predecessor of zero.  Cond is the strict-host
form of IF: the selector chooses between two thunks, and only the chosen one
is called.

Section 2: Pairs

A pair closes over two values and, given a selector, hands both to it.
FIRST applies it to TRUE and SECOND to FALSE.  There are no fields.

Section 3: Peano numbers

See https://en.wikipedia.org/wiki/Peano_axioms

 1. 0 is a natural number.
 2. For every natural number x, x = x. Equality is reflexive.
 3. For all natural numbers x and y, if x = y, then y = x. Equality is symmetric.
 4. For all natural numbers x, y and z, if x = y and y = z, then x = z.
    Equality is transitive.
 5. For all a and b, if b is a natural number and a = b, then a is also a
    natural number. The naturals are closed under equality.
 6. For every natural number n, S(n) is a natural number. The naturals are
    closed under S.
 7. For all natural numbers m and n, if S(m) = S(n), then m = n. S is an
    injection.
 8. For every natural number n, S(n) = 0 is false. No natural number has 0
    as its successor.

A number is a pair whose first element answers "is this zero?" and whose
second element is the predecessor.  Zero is PAIR(TRUE, TRUE); its second
element is not a number at all, so the predecessor of zero is undefined and
faults the moment anyone treats it as one.

Section 4: Recursion without a fixed point

Recurse unfolds exactly one step of a binary recursion: unless either operand
is zero, it calls the given operation on both predecessors.  It never calls
itself; the operations in this package name themselves as the step, which is
plain Go recursion.  Each operation handles its own zero cases before handing
off, since the adapter answers FALSE for them and FALSE is rarely the right
sum or product.

Every step costs a stack frame per unit of operand, so keep the numbers small.
*/
package church
