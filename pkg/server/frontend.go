package server

import "net/http"

func (s *Server) serveFrontend(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(frontendHTML))
}

const frontendHTML = `<!DOCTYPE html>
<html lang="en"><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>Maxi Checker</title>
<link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;500;700&family=Space+Grotesk:wght@500;700&display=swap" rel="stylesheet">
<style>
:root{--bg:#0b0709;--sf:#151014;--sf2:#1d1519;--bd:#2d2026;--tx:#e8dfe2;--tx2:#a08f96;--tx3:#6b5a61;--rd:#ef4444;--or:#f97316;--gn:#10b981;--go:#eab308}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'JetBrains Mono',monospace;background:var(--bg);color:var(--tx);min-height:100vh}
.app{max-width:760px;margin:0 auto;padding:28px 24px}
h1{font-family:'Space Grotesk',sans-serif;font-size:26px;background:linear-gradient(135deg,var(--rd),var(--or));-webkit-background-clip:text;-webkit-text-fill-color:transparent}
.sub{color:var(--tx2);font-size:12px;margin:6px 0 24px}
.pn{background:var(--sf);border:1px solid var(--bd);border-radius:12px;padding:20px;margin-bottom:16px}
.pn h2{font-family:'Space Grotesk',sans-serif;font-size:14px;margin-bottom:12px;color:var(--or)}
input{width:100%;padding:11px 12px;background:var(--sf2);border:1px solid var(--bd);border-radius:8px;color:var(--tx);font-family:inherit;font-size:12px;outline:0;margin-bottom:10px}
input:focus{border-color:var(--or)}
.btn{font-family:inherit;font-size:12px;font-weight:700;padding:11px 20px;border:none;border-radius:8px;cursor:pointer;background:linear-gradient(135deg,var(--rd),var(--or));color:#fff;transition:.2s}
.btn:hover{filter:brightness(1.15)}.btn:disabled{opacity:.4;cursor:default}
.btn-s{background:var(--sf2);color:var(--tx2);border:1px solid var(--bd)}
.row{display:flex;gap:10px;flex-wrap:wrap}
.stat{display:flex;justify-content:space-between;padding:8px 0;border-bottom:1px solid var(--bd);font-size:12px}
.stat .k{color:var(--tx3)}.stat .v{font-weight:700}
.score{font-size:44px;font-weight:700;color:var(--or);text-align:center;margin:12px 0}
.kw{display:inline-block;padding:3px 9px;margin:2px;border-radius:12px;font-size:10px;background:rgba(249,115,22,.12);color:var(--or);border:1px solid rgba(249,115,22,.25)}
.pfp{width:240px;height:240px;border-radius:12px;border:1px solid var(--bd);display:block;margin:12px auto}
.toast{position:fixed;bottom:24px;right:24px;background:var(--sf);border:1px solid var(--rd);border-radius:10px;padding:13px 18px;color:var(--tx);font-size:12px;z-index:100;animation:slideIn .3s}
@keyframes slideIn{from{transform:translateX(100px);opacity:0}to{transform:translateX(0);opacity:1}}
.emp{color:var(--tx3);font-size:11px;text-align:center;padding:18px}
</style></head><body>
<div id="root"></div>
<script src="https://cdnjs.cloudflare.com/ajax/libs/react/18.2.0/umd/react.production.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/react-dom/18.2.0/umd/react-dom.production.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/babel-standalone/7.23.9/babel.min.js"></script>
<script type="text/babel">
const{useState}=React;
const post=(p,b)=>fetch(p,{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(b)}).then(async r=>{const j=await r.json();if(!r.ok)throw new Error(j.error||('HTTP '+r.status));return j});
const ab=a=>a?(a.slice(0,6)+'...'+a.slice(-4)):'-';

function App(){
  const[addr,sAddr]=useState('');
  const[handle,sHandle]=useState('');
  const[busy,sBusy]=useState('');
  const[result,sResult]=useState(null);
  const[tw,sTw]=useState(null);
  const[pfp,sPfp]=useState('');
  const[toast,sToast]=useState('');
  const notify=m=>{sToast(m);setTimeout(()=>sToast(''),4500)};

  const connect=async()=>{
    if(!window.ethereum){notify('No browser wallet found');return}
    try{const a=await window.ethereum.request({method:'eth_requestAccounts'});sAddr(a[0])}
    catch(e){notify('Wallet connection rejected')}
  };

  const check=async()=>{
    sBusy('check');sResult(null);sTw(null);sPfp('');
    try{
      const r=await post('/check-wallet',{walletAddress:addr,xHandle:handle||undefined});
      sResult(r);
      if(handle){post('/fetch-twitter',{username:handle}).then(sTw).catch(e=>notify(e.message))}
    }catch(e){notify(e.message)}
    sBusy('');
  };

  const generate=async()=>{
    sBusy('pfp');
    try{
      const r=await post('/generate-pfp',{blockchainScore:tw?tw.blockchain.score:result.score,keywords:tw?tw.blockchain.keywords:[],ethArchetype:result.ethArchetype,mumbaiMode:result.mumbaiMode,xHandle:handle});
      sPfp(r.imageUrl);
    }catch(e){notify(e.message)}
    sBusy('');
  };

  const mint=async()=>{
    sBusy('mint');
    try{
      const r=await post('/mint-persona',{walletAddress:addr});
      await window.ethereum.request({method:'eth_sendTransaction',params:[{from:r.tx.from,to:r.tx.to,value:r.tx.value,gas:r.tx.gas}]});
      notify('Persona minted (simulated) 🎉');
    }catch(e){notify(e.message)}
    sBusy('');
  };

  return<div className="app">
    <h1>🔥 Maxi Checker</h1>
    <div className="sub">How much of an ETH maxi are you? Connect, check, flex.</div>

    <div className="pn">
      <h2>01 / Wallet</h2>
      <input placeholder="0x... wallet address" value={addr} onChange={e=>sAddr(e.target.value)}/>
      <input placeholder="@handle (optional)" value={handle} onChange={e=>sHandle(e.target.value)}/>
      <div className="row">
        <button className="btn btn-s" onClick={connect}>{addr?ab(addr):'Connect Wallet'}</button>
        <button className="btn" disabled={!addr||busy==='check'} onClick={check}>{busy==='check'?'Reading the chain...':'Check My Maxi Level'}</button>
      </div>
    </div>

    {result&&<div className="pn">
      <h2>02 / Persona</h2>
      <div className="score">{result.score}</div>
      <div className="stat"><span className="k">Archetype</span><span className="v">{result.ethArchetype}</span></div>
      <div className="stat"><span className="k">Mumbai Mode</span><span className="v">{result.mumbaiMode}</span></div>
      <div className="stat"><span className="k">Gas Style</span><span className="v">{result.gasStyle}</span></div>
      <div className="stat"><span className="k">OG Energy</span><span className="v">{result.ogEnergy}</span></div>
    </div>}

    {tw&&<div className="pn">
      <h2>03 / Onchain Brain ({tw.blockchain.score}% of posts)</h2>
      {tw.blockchain.keywords.length?tw.blockchain.keywords.map(k=><span key={k} className="kw">{k}</span>):<div className="emp">no blockchain chatter detected</div>}
    </div>}

    {result&&<div className="pn">
      <h2>04 / Pixel PFP</h2>
      {pfp?<img className="pfp" src={pfp} alt="generated avatar"/>:<div className="emp">generate a pixel avatar from your persona</div>}
      <div className="row">
        <button className="btn" disabled={busy==='pfp'} onClick={generate}>{busy==='pfp'?'Painting pixels...':'Generate PFP'}</button>
        {pfp&&<button className="btn btn-s" disabled={busy==='mint'} onClick={mint}>{busy==='mint'?'Minting...':'Mint Persona'}</button>}
      </div>
    </div>}

    {toast&&<div className="toast">{toast}</div>}
  </div>;
}
ReactDOM.createRoot(document.getElementById('root')).render(<App/>);
</script>
</body></html>`
