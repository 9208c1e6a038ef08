package phone_forward

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSortedUnique(t *testing.T, numbers []string) {
	t.Helper()

	for i := 1; i < len(numbers); i++ {
		require.Negative(t, CompareNumbers(numbers[i-1], numbers[i]),
			"%q must sort strictly before %q", numbers[i-1], numbers[i])
	}
}

func TestReverse_Identity(t *testing.T) {
	pf := New()

	pn, err := pf.Reverse(context.Background(), "*12#")
	require.NoError(t, err)
	assert.Equal(t, []string{"*12#"}, pn.All())

	pn, err = pf.GetReverse(context.Background(), "*12#")
	require.NoError(t, err)
	assert.Equal(t, []string{"*12#"}, pn.All())
}

func TestReverse_EveryDepth(t *testing.T) {
	ctx := context.Background()
	pf := New()

	// forwardings onto 4, 41 and 412 all rewrite something into 4123
	for _, fw := range [][2]string{{"1", "4"}, {"2", "41"}, {"3", "412"}, {"#", "4123"}, {"5", "41234"}} {
		_, err := pf.Add(ctx, fw[0], fw[1])
		require.NoError(t, err)
	}

	pn, err := pf.Reverse(ctx, "4123")
	require.NoError(t, err)
	assert.Equal(t, []string{"1123", "223", "33", "4123", "#"}, pn.All())

	pn, err = pf.GetReverse(ctx, "4123")
	require.NoError(t, err)
	assert.Equal(t, []string{"1123", "223", "33", "4123", "#"}, pn.All())
}

func TestGetReverse_FiltersShadowedCandidates(t *testing.T) {
	ctx := context.Background()
	pf := New()

	_, err := pf.Add(ctx, "1", "4")
	require.NoError(t, err)
	// 12... is rewritten by the longer prefix, so 125 no longer reaches 425
	_, err = pf.Add(ctx, "12", "7")
	require.NoError(t, err)
	// 425 itself is forwarded away
	_, err = pf.Add(ctx, "42", "9")
	require.NoError(t, err)

	pn, err := pf.Reverse(ctx, "425")
	require.NoError(t, err)
	assert.Equal(t, []string{"125", "425"}, pn.All())

	pn, err = pf.GetReverse(ctx, "425")
	require.NoError(t, err)
	assert.Empty(t, pn.All())

	pn, err = pf.GetReverse(ctx, "75")
	require.NoError(t, err)
	assert.Equal(t, []string{"125", "75"}, pn.All())
}

func TestReverse_Deduplicates(t *testing.T) {
	ctx := context.Background()
	pf := New()

	// both forwardings turn 223 into 123, found at different depths
	_, err := pf.Add(ctx, "2", "1")
	require.NoError(t, err)
	_, err = pf.Add(ctx, "22", "12")
	require.NoError(t, err)

	pn, err := pf.Reverse(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "223"}, pn.All())

	_, err = pf.Add(ctx, "21", "12")
	require.NoError(t, err)
	_, err = pf.Add(ctx, "2", "12")
	require.NoError(t, err)

	pn, err = pf.Reverse(ctx, "12")
	require.NoError(t, err)
	requireSortedUnique(t, pn.All())
	assert.Equal(t, []string{"12", "2", "21", "22"}, pn.All())
}

func TestReverse_Properties(t *testing.T) {
	ctx := context.Background()

	for _, class := range []numberClass{numberClassAny, numberClassDigits, numberClassShort, numberClassService} {
		t.Run(fmt.Sprint(class), func(t *testing.T) {
			ng := newNumberGenerator(42 + int64(class))
			require.NoError(t, ng.initNumberBlock(400, class))

			pf := New()
			for i := 0; i+1 < len(ng.block); i += 2 {
				if ng.block[i] != ng.block[i+1] {
					_, err := pf.Add(ctx, ng.block[i], ng.block[i+1])
					require.NoError(t, err)
				}
			}
			checkTrie(t, pf.trie)

			for _, num := range ng.block {
				forwarded := mustGet(t, pf, num)
				require.Len(t, forwarded, 1)

				reverse, err := pf.Reverse(ctx, num)
				require.NoError(t, err)
				requireSortedUnique(t, reverse.All())
				require.Contains(t, reverse.All(), num)

				// what num forwards to has num among its reverses
				back, err := pf.Reverse(ctx, forwarded[0])
				require.NoError(t, err)
				require.Contains(t, back.All(), num)

				strict, err := pf.GetReverse(ctx, num)
				require.NoError(t, err)
				requireSortedUnique(t, strict.All())
				for _, r := range strict.All() {
					require.Contains(t, reverse.All(), r)
					require.Equal(t, []string{num}, mustGet(t, pf, r))
				}
			}
		})
	}
}
