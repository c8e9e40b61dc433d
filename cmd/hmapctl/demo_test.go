package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)

	assertContains(t, output, []string{
		"0: (3, 10) \n1: (5, 10) \n2: (2, 10) \n3: (4, 11) \n4: (1, 10) \n",
		"GOT: 10\n",
		"0: (name_2, Helo_2) (name_5, Helo_5) \n1: (name_3, Helo_3) \n2: (name_1, Helo_1) (name_4, Helo_4) \n",
		"GOT: Helo_5\n",
	})
	assertNotContains(t, output, []string{"Unfreed memories"})
}
