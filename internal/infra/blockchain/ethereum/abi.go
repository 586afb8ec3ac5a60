package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodGetAllWaves   = "getAllWaves"
	methodGetTotalWaves = "getTotalWaves"
	methodWave          = "wave"
	eventNewWave        = "NewWave"
)

// wavePortalABI is the subset of the WavePortal interface the client uses.
const wavePortalABI = `[
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "address", "name": "from", "type": "address"},
			{"indexed": false, "internalType": "uint256", "name": "timestamp", "type": "uint256"},
			{"indexed": false, "internalType": "string", "name": "message", "type": "string"}
		],
		"name": "NewWave",
		"type": "event"
	},
	{
		"inputs": [],
		"name": "getAllWaves",
		"outputs": [
			{
				"components": [
					{"internalType": "address", "name": "waver", "type": "address"},
					{"internalType": "string", "name": "message", "type": "string"},
					{"internalType": "uint256", "name": "timestamp", "type": "uint256"}
				],
				"internalType": "struct WavePortal.Wave[]",
				"name": "",
				"type": "tuple[]"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "getTotalWaves",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "string", "name": "_message", "type": "string"}],
		"name": "wave",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

// parsedABI is the decoded wavePortalABI.
var parsedABI = mustParseABI(wavePortalABI)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
