package succinct

/*

# Succinct balanced-parentheses encoding

An arena-backed tree is encoded as two parallel sequences:

- a structure bit sequence, depth-first preorder, one open bit (1) when a node
  is entered and one close bit (0) when it is left
- a value sequence holding each node's payload in the same preorder

For the tree

	    A
	   / \
	  B   C
	  |
	  D

the structure is 1 1 1 0 0 1 0 0 and the values are A B D C.

## Bit count

The structure is exactly 2n bits for n nodes. There is no separate root
terminator: the root's own close bit ends the stream. StructureBits and
StructureBytes are the only definitions of that size, and the encoder, the
decoder and the memory estimate in `treestats` all use them.

## Decoding

Decoding is a single forward scan. An open bit creates a node holding the next
unread value, as the last child of the innermost open node; a close bit ends the
innermost open node. Inputs whose counts or nesting disagree are rejected with
ErrMalformedEncoding and nothing is produced. Decoded ids are canonical
preorder ids, so Decode(Encode(t)) has t's shape and preorder values but not
necessarily t's ids.

## Wire form

Marshal and Unmarshal carry an Encoding as a CBOR array
[nodeCount, structure, values] where structure is the bitset binary form.

*/
