// Command cli plays a local game from the terminal: it prints the
// current player's legal moves, applies the chosen action and shows the
// events it produced. Useful for poking at the rules engine without a
// server.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	ironworks "github.com/minaorangina/ironworks"
)

func main() {
	seed := flag.String("seed", "cli-seed", "deterministic game seed")
	seats := flag.String("seats", "A,B", "comma-separated seat order (2-4 players)")
	flag.Parse()

	seatList := strings.Split(*seats, ",")
	if len(seatList) < 2 || len(seatList) > 4 {
		log.Fatal("a game requires between 2 and 4 seats")
	}

	state := ironworks.CreateGame(seatList, *seed)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("\nround %d, turn %d: %s to act (%d action(s) taken)\n",
			state.Round, state.Turn, state.CurrentPlayer, state.ActionsTaken)

		moves := ironworks.LegalMoves(state, state.CurrentPlayer)
		for i, move := range moves {
			link := move.(ironworks.BuildLink)
			fmt.Printf("  [%d] build link %s-%s\n", i, link.From, link.To)
		}
		fmt.Println("  [e] end turn   [q] quit")
		fmt.Print("> ")

		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		var action ironworks.Action
		switch {
		case input == "q":
			return
		case input == "e":
			action = ironworks.EndTurn{Player: state.CurrentPlayer}
		default:
			idx, err := strconv.Atoi(input)
			if err != nil || idx < 0 || idx >= len(moves) {
				fmt.Println("unrecognised choice")
				continue
			}
			action = moves[idx]
		}

		next, rerr := ironworks.Reduce(state, action)
		if rerr != nil {
			fmt.Printf("rejected: %s\n", rerr.Error())
		}
		for _, event := range next.Log[len(state.Log):] {
			data, _ := json.Marshal(event.Data)
			fmt.Printf("  #%d %s %s\n", event.Idx, event.Type, data)
		}
		state = next
	}
}
