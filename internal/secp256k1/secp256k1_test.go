package secp256k1_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"btckit/internal/secp256k1"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex %q", s)
	return n
}

func pow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

func TestGeneratorOrder(t *testing.T) {
	g := secp256k1.Generator()

	inf, err := g.ScalarMul(secp256k1.N())
	require.NoError(t, err)
	require.True(t, inf.IsInfinity(), "n*G must be the identity")

	wrapped, err := g.ScalarMul(new(big.Int).Add(secp256k1.N(), big.NewInt(1)))
	require.NoError(t, err)
	require.True(t, wrapped.Equal(g), "(n+1)*G must circle back to G")
}

func TestVerifyKnownSignatures(t *testing.T) {
	sec := append([]byte{0x04},
		append(
			hexInt(t, "887387e452b8eacc4acfde10d9aaf7f6d9a0f975aabb10d006e4da568744d06c").FillBytes(make([]byte, 32)),
			hexInt(t, "61de6d95231cd89026e286df3b6ae4a894a3378e393e93a0f45b666329a0ae34").FillBytes(make([]byte, 32))...,
		)...)
	pub, err := secp256k1.ParseSEC(sec)
	require.NoError(t, err)

	cases := []struct{ z, r, s string }{
		{
			"ec208baa0fc1c19f708a9ca96fdeff3ac3f230bb4a7ba4aede4942ad003c0f60",
			"ac8d1c87e51d0d441be8b3dd5b05c8795b48875dffe00b7ffcfac23010d3a395",
			"068342ceff8935ededd102dd876ffd6ba72d6a427a3edb13d26eb0781cb423c4",
		},
		{
			"7c076ff316692a3d7eb3c3bb0f8b1488cf72e1afcd929e29307032997a838a3d",
			"eff69ef2b1bd93a66ed5219add4fb51e11a840f404876325a1e8ffe0529a2c",
			"c7207fee197d27c618aea621406f6bf5ef6fca38681d82b2f06fddbdce6feab6",
		},
	}
	for _, tc := range cases {
		sig, err := secp256k1.NewSignature(hexInt(t, tc.r), hexInt(t, tc.s))
		require.NoError(t, err)
		require.True(t, pub.Verify(hexInt(t, tc.z), sig), "z=%s", tc.z)

		// A different hash must not verify.
		bad := new(big.Int).Add(hexInt(t, tc.z), big.NewInt(1))
		require.False(t, pub.Verify(bad, sig))
	}
}

func TestSignAndVerify(t *testing.T) {
	key, err := secp256k1.NewPrivateKey(big.NewInt(12345))
	require.NoError(t, err)

	z := secp256k1.MessageHash([]byte("Programming Bitcoin!"))
	sig, err := key.Sign(z)
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(z, sig))

	// Deterministic nonce: same inputs, same signature.
	again, err := key.Sign(z)
	require.NoError(t, err)
	require.Equal(t, sig.R(), again.R())
	require.Equal(t, sig.S(), again.S())

	// Low-s normalization.
	half := new(big.Int).Rsh(secp256k1.N(), 1)
	require.True(t, sig.S().Cmp(half) <= 0)

	// Another key must not verify it.
	other, err := secp256k1.NewPrivateKey(big.NewInt(67890))
	require.NoError(t, err)
	require.False(t, other.PublicKey().Verify(z, sig))
}

func TestGenerateKey(t *testing.T) {
	key, err := secp256k1.GenerateKey()
	require.NoError(t, err)

	sig, err := key.SignMessage([]byte("hello"))
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(secp256k1.MessageHash([]byte("hello")), sig))
}

func TestPrivateKeyRange(t *testing.T) {
	_, err := secp256k1.NewPrivateKey(big.NewInt(0))
	require.ErrorIs(t, err, secp256k1.ErrSecretRange)

	_, err = secp256k1.NewPrivateKey(secp256k1.N())
	require.ErrorIs(t, err, secp256k1.ErrSecretRange)
}

func TestSECUncompressed(t *testing.T) {
	cases := []struct {
		secret *big.Int
		want   string
	}{
		{big.NewInt(5000),
			"04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10"},
		{pow(2018, 5),
			"04027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13cc9dff87647fd023c13b4a4994f17691895806e1b40b57f4fd22581a4f46851f3b06"},
		{hexInt(t, "deadbeef12345"),
			"04d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f842efa762fd59961d0e99803c61edba8b3e3f7dc3a341836f97733aebf987121"},
	}
	for _, tc := range cases {
		key, err := secp256k1.NewPrivateKey(tc.secret)
		require.NoError(t, err)
		require.Equal(t, tc.want, hex.EncodeToString(key.PublicKey().SEC(false)))
	}
}

func TestSECCompressed(t *testing.T) {
	cases := []struct {
		secret *big.Int
		want   string
	}{
		{big.NewInt(5001),
			"0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1"},
		{pow(2019, 5),
			"02933ec2d2b111b92737ec12f1c5d20f3233a0ad21cd8b36d0bca7a0cfa5cb8701"},
		{hexInt(t, "deadbeef54321"),
			"0296be5b1292f6c856b3c5654e886fc13511462059089cdf9c479623bfcbe77690"},
	}
	for _, tc := range cases {
		key, err := secp256k1.NewPrivateKey(tc.secret)
		require.NoError(t, err)
		require.Equal(t, tc.want, hex.EncodeToString(key.PublicKey().SEC(true)))
	}
}

func TestParseSEC(t *testing.T) {
	key, err := secp256k1.NewPrivateKey(big.NewInt(999))
	require.NoError(t, err)
	pub := key.PublicKey()

	for _, compressed := range []bool{true, false} {
		parsed, err := secp256k1.ParseSEC(pub.SEC(compressed))
		require.NoError(t, err)
		require.True(t, parsed.Equal(pub), "compressed=%v", compressed)
	}

	_, err = secp256k1.ParseSEC([]byte{0x05, 1, 2})
	require.ErrorIs(t, err, secp256k1.ErrBadSEC)

	// Off-curve uncompressed point.
	bad := pub.SEC(false)
	bad[64] ^= 1
	_, err = secp256k1.ParseSEC(bad)
	require.ErrorIs(t, err, secp256k1.ErrBadSEC)
}

func TestParseSECNonResidue(t *testing.T) {
	// x = 0 gives y² = 7, and 7 is a quadratic non-residue mod p, so no
	// point with that x exists in either parity.
	sec := make([]byte, 33)
	for _, prefix := range []byte{0x02, 0x03} {
		sec[0] = prefix
		_, err := secp256k1.ParseSEC(sec)
		require.ErrorIs(t, err, secp256k1.ErrBadSEC, "prefix %#02x", prefix)
	}
}

func TestParseSECRejectsOutOfRangeCoords(t *testing.T) {
	// x = p+1 must not be reduced to x = 1 (which is on the curve).
	overflow := new(big.Int).Add(secp256k1.P(), big.NewInt(1))
	sec := append([]byte{0x02}, overflow.FillBytes(make([]byte, 32))...)
	_, err := secp256k1.ParseSEC(sec)
	require.ErrorIs(t, err, secp256k1.ErrBadSEC)

	// Same for a y coordinate at 2^256-1 in the uncompressed form.
	key, err := secp256k1.NewPrivateKey(big.NewInt(999))
	require.NoError(t, err)
	bad := key.PublicKey().SEC(false)
	for i := 33; i < 65; i++ {
		bad[i] = 0xff
	}
	_, err = secp256k1.ParseSEC(bad)
	require.ErrorIs(t, err, secp256k1.ErrBadSEC)
}

func TestSignatureDER(t *testing.T) {
	r := hexInt(t, "37206a0610995c58074999cb9767b87af4c4978db68c06e8e6e81d282047a7c6")
	s := hexInt(t, "8ca63759c1157ebeaec0d03cecca119fc9a75bf8e6d0fa65c841c8e2738cdaec")
	sig, err := secp256k1.NewSignature(r, s)
	require.NoError(t, err)

	want := "3045022037206a0610995c58074999cb9767b87af4c4978db68c06e8e6e81d28" +
		"2047a7c60221008ca63759c1157ebeaec0d03cecca119fc9a75bf8e6d0fa65c8" +
		"41c8e2738cdaec"
	require.Equal(t, want, hex.EncodeToString(sig.DER()))

	parsed, err := secp256k1.ParseDER(sig.DER())
	require.NoError(t, err)
	require.Equal(t, r, parsed.R())
	require.Equal(t, s, parsed.S())
}

func TestParseDERErrors(t *testing.T) {
	for _, tc := range [][]byte{
		nil,
		{0x30},
		{0x31, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01},       // wrong tag
		{0x30, 0x07, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01},       // bad length
		{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0xff}, // trailing byte
	} {
		_, err := secp256k1.ParseDER(tc)
		require.ErrorIs(t, err, secp256k1.ErrBadDER, "input %x", tc)
	}
}

func TestAddress(t *testing.T) {
	cases := []struct {
		secret     *big.Int
		compressed bool
		testnet    bool
		want       string
	}{
		{big.NewInt(5002), false, true, "mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"},
		{pow(2020, 5), true, true, "mopVkxp8UhXqRYbCYJsbeE1h1fiF64jcoH"},
		{hexInt(t, "12345deadbeef"), true, false, "1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"},
	}
	for _, tc := range cases {
		key, err := secp256k1.NewPrivateKey(tc.secret)
		require.NoError(t, err)
		require.Equal(t, tc.want, key.PublicKey().Address(tc.compressed, tc.testnet))
	}
}

func TestWIFRoundtrip(t *testing.T) {
	key, err := secp256k1.NewPrivateKey(big.NewInt(5003))
	require.NoError(t, err)

	wif := key.WIF(true, true)
	require.Equal(t, "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN8rFTv2sfUK", wif)

	back, compressed, testnet, err := secp256k1.FromWIF(wif)
	require.NoError(t, err)
	require.True(t, compressed)
	require.True(t, testnet)
	require.Equal(t, key.Bytes(), back.Bytes())
}

func TestFingerprint(t *testing.T) {
	key, err := secp256k1.NewPrivateKey(big.NewInt(7))
	require.NoError(t, err)
	fp := key.PublicKey().Fingerprint()
	require.Len(t, fp, 20)
}
