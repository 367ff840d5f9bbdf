/*
Package xor provides the passcode-keyed stream cipher used to obscure file contents.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for preventing passive observation of plain text information since it generally requires knowledge of the original passcode to correctly reverse the process.

# How it works:

Each byte of the input is XOR'd with a byte of the passcode.
Once a passcode byte is used, the screen will progress to the next byte in the passcode.
When the last byte is used, the first will be used again, operating like a ring buffer.
Applying the same passcode a second time restores the original input, so Transform is its own inverse.

Encrypt and Decrypt wrap Transform with standard base64 so the screened result can be stored and moved around as text.
Text is screened as its UTF-8 encoding, one byte at a time.

The streaming Reader and Writer apply the same key schedule, and may start at an offset within the key.
Providing an offset will make the screen start at the given offset instead of the first byte.

# Important note:

Decrypting with the wrong passcode is NOT an error.
The result is simply garbled data that is indistinguishable from a successful decryption of garbage.
No integrity information is stored alongside the screened data, so there's nothing to check against.

# General guidelines:
  - Longer passcodes are better, but have limited usefulness with a short payload.
  - DefaultPasscode exists for demonstration only. Callers should supply their own.
  - Using securely generated keys with the OS entropy pool (like with GenKey or GenPasscode) are better.
  - Screened files are conventionally named with the EncryptedSuffix, see EncryptedName and DecryptedName.
*/
package xor
