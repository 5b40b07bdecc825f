package main

import (
	"log"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/veridian-network/veridian-token-contracts/contracts"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: false}
	contract.Logger = kalpsdk.NewLogger()

	chaincode, err := kalpsdk.NewChaincode(contracts.NewSmartContract(contract))
	if err != nil {
		log.Panicf("Error creating veridian chaincode: %v", err)
	}

	if err := chaincode.Start(); err != nil {
		log.Panicf("Error starting veridian chaincode: %v", err)
	}
}
