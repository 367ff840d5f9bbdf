/*
Package lsb hides an arbitrary byte payload in the least significant bits of raw pixel channel bytes, and recovers it.

This is NOT robust steganography.
Any lossy re-encoding, scaling, or recompression of the carrier destroys the payload, and the embedded stream is trivially detectable with statistical analysis.

# How it works:

The payload is preceded by a 32-bit, big-endian header holding the length of the payload in *bits*.
The header and the payload are expanded into a bit stream, most significant bit first, and each bit replaces bit 0 of one channel byte, in order.
The high 7 bits of every channel byte are never changed, and channel bytes past the end of the stream are left alone.

A carrier with N eligible channel bytes can hold (N - 32) / 8 payload bytes, see Capacity.

# Channel eligibility:

By default every channel byte is eligible, including alpha, which matches treating the carrier as a flat byte array.
ColorOnly restricts embedding to the red, green, and blue bytes of a 4-channel layout.
The same options must be used to extract a payload as were used to embed it.

# Errors:

Embedding a payload that doesn't fit results in ErrCapacityExceeded, and nothing is written.
Extracting from a carrier whose header claims more bits than are available results in ErrTruncatedStream.
A random or corrupted header that happens to fit will "succeed" with garbage, since no integrity information is stored.
*/
package lsb
