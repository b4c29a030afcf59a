package interpreter

import "fmt"

// secret is one hidden command: a trigger substring and its fixed
// payload. The payload may embed catalog values via a format verb.
type secret struct {
	key     string
	payload string
}

// secrets is checked in order; the first key contained in the input
// wins. Matching is substring containment, not equality, so "please
// sudo hire-me now" still triggers.
var secrets = []secret{
	{"sudo hire-me", `
╔═══════════════════════════════════════════════════════════╗
║  🚀 SUDO PRIVILEGE GRANTED                                ║
║                                                           ║
║  Congratulations! You've discovered a secret command.     ║
║  This proves you have the curiosity and technical         ║
║  mindset I value in collaborators.                        ║
║                                                           ║
║  📧 Let's connect: %s        ║
╚═══════════════════════════════════════════════════════════╝
`},
	{"rm -rf /", `
⚠️ PERMISSION_DENIED: Nice try! This isn't a real terminal...
But I appreciate the chaos energy. 😈

Achievement hint: Try something more constructive!
`},
	{"cat /etc/passwd", `
root:x:0:0:Samuel Avornyoh:/root:/bin/bash
ai_engineer:x:1000:1000:Neural Networks:/home/ai:/bin/python
blockchain:x:1001:1001:Decentralized:/home/web3:/bin/solidity
creativity:x:1002:1002:Ideas:/home/mind:/bin/infinite

Just kidding! But you've found an easter egg. 🥚
`},
	{"hack", `
🔓 INITIATING_HACK_SEQUENCE...
████████░░░░░░░░░░░░ 40%
ERROR: Ethics module prevented action.

Just kidding! I appreciate your hacker spirit though.
Type 'skills' to see what I can actually do.
`},
	{"matrix", `
Wake up, Neo...
The Matrix has you...
Follow the white rabbit.

🐇 Knock, knock.

(Try the Konami code: ↑↑↓↓←→←→BA)
`},
	{"coffee", `
☕ BREWING_COFFEE...
████████████████████ 100%

Coffee ready! Fun fact: This portfolio was built
with approximately 47 cups of coffee.
`},
	{"game", `
🎮 TYPING_GAME_COMING_SOON!

In the meantime, try exploring more commands:
- whoami
- projects
- skills
- contact
- help
`},
}

// renderSecret fills the payload's catalog placeholder where present.
func renderSecret(s secret, email string) string {
	if s.key == "sudo hire-me" {
		return fmt.Sprintf(s.payload, email)
	}
	return s.payload
}
